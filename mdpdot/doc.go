// Package mdpdot renders an *mdp.MDP as Graphviz DOT, via
// github.com/awalterschulze/gographviz. Each state is a circular node;
// each (state, action) enabling gets its own point-shaped node labelled
// "alpha | w(alpha)", with an edge from the state to the action node and
// one edge per successor from the action node, labelled with its
// probability rounded to four decimals.
//
// *unfold.Unfolded renders through the same Write, since it embeds
// *mdp.MDP and its state names already read "(name, v)" / bot.
package mdpdot
